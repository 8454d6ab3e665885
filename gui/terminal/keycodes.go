// This file is part of GopherChip8.
//
// GopherChip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherChip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherChip8.  If not, see <https://www.gnu.org/licenses/>.

package terminal

// ASCII control codes recognised in the input stream.
const (
	keyInterrupt = 3 // end-of-text character
	keyBackspace = 8
	keyTab       = 9
	keyReturn    = 13
	keyEsc       = 27
	keyDelete    = 127
)

// the name given to the interrupt character. it is not a real key and is
// converted to a quit event.
const interruptName = "Interrupt"

// control sequences recognised in the input stream, keyed by the characters
// following the escape character.
var sequences = map[string]string{
	"[A":   "Up",
	"[B":   "Down",
	"[C":   "Right",
	"[D":   "Left",
	"[15~": "F5",
}

// parseInput converts raw terminal input into key names. Key names follow
// the SDL naming convention used by the userinput package.
func parseInput(b []byte) []string {
	var keys []string

	for i := 0; i < len(b); i++ {
		c := b[i]

		switch {
		case c == keyEsc:
			if i+1 < len(b) && (b[i+1] == '[' || b[i+1] == 'O') {
				// consume up to and including the final byte of the sequence
				j := i + 2
				for j < len(b) && (b[j] < 0x40 || b[j] > 0x7e) {
					j++
				}
				if j < len(b) {
					if name, ok := sequences[string(b[i+1:j+1])]; ok {
						keys = append(keys, name)
					}
				}
				i = j
			} else {
				keys = append(keys, "Escape")
			}
		case c == keyInterrupt:
			keys = append(keys, interruptName)
		case c == keyBackspace || c == keyDelete:
			keys = append(keys, "Backspace")
		case c == keyTab:
			keys = append(keys, "Tab")
		case c == keyReturn:
			keys = append(keys, "Return")
		case c == ' ':
			keys = append(keys, "Space")
		case c >= 'a' && c <= 'z':
			keys = append(keys, string(rune(c-'a'+'A')))
		case c > ' ' && c < keyDelete:
			keys = append(keys, string(rune(c)))
		}
	}

	return keys
}
