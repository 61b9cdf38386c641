// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package gui

// Events are the things that happen in the gui, as a result of user
// interaction, and are sent over a registered event channel.

// EventID identifies the type of event taking place.
type EventID int

// list of valid events.
const (
	EventWindowClose EventID = iota
	EventKeyboard
)

// EventData represents the data that is associated with an event.
type EventData interface{}

// Event is the structure that is passed over the event channel.
type Event struct {
	ID   EventID
	Data EventData
}

// EventDataKeyboard is the data that accompanies EventKeyboard events. Key
// is the SDL name of the key.
type EventDataKeyboard struct {
	Key  string
	Down bool
}
