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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package so that it can be
// supplemented with mode information before being sent to the real output.
type helpWriter struct {
	buffer strings.Builder
}

func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buffer.Write(p)
}

func (hw *helpWriter) Clear() {
	hw.buffer.Reset()
}

// help prints the usage message to output.
func (hw *helpWriter) help(output io.Writer, path string, subModes []string, descriptions map[string]string, additionalHelp string) {
	if output == nil {
		return
	}

	lines := strings.SplitN(hw.buffer.String(), "\n", 2)

	// the flag package always writes a "Usage:" line even when there are no
	// flags to describe
	var flagHelp string
	if len(lines) > 1 {
		flagHelp = lines[1]
	}

	if flagHelp == "" && len(subModes) == 0 {
		if path != "" {
			fmt.Fprintf(output, "No help available for %s\n", path)
		} else {
			fmt.Fprintln(output, "No help available")
		}
		return
	}

	if path != "" {
		fmt.Fprintf(output, "%s for %s mode\n", lines[0], path)
	} else {
		fmt.Fprintln(output, lines[0])
	}

	fmt.Fprint(output, flagHelp)

	if len(subModes) > 0 {
		if flagHelp != "" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
		for _, m := range subModes {
			if d, ok := descriptions[m]; ok {
				fmt.Fprintf(output, "    %s: %s\n", m, d)
			}
		}
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
