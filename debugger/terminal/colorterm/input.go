// This file is part of Mipsim.
//
// Mipsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mipsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mipsim.  If not, see <https://www.gnu.org/licenses/>.

package colorterm

import (
	"unicode"

	"github.com/pipistrelle/mipsim/curated"
	"github.com/pipistrelle/mipsim/debugger/terminal"
	"github.com/pipistrelle/mipsim/debugger/terminal/colorterm/easyterm"
	"github.com/pipistrelle/mipsim/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	input := make([]rune, 0, 255)
	historyIdx := len(ct.commandHistory)

	ct.refreshLine(prompt, input)

	for {
		select {
		case rr := <-ct.reader:
			if rr.err != nil {
				return "", rr.err
			}

			switch rr.r {
			case easyterm.KeyInterrupt:
				ct.EasyTerm.TermPrint("\n")
				return "", curated.Errorf(terminal.UserInterrupt)

			case easyterm.KeyTab:
				if ct.tabCompletion != nil {
					s := ct.tabCompletion.Complete(string(input))
					input = []rune(s)
				}

			case easyterm.KeyCarriageReturn, '\n':
				ct.EasyTerm.TermPrint("\n")
				if ct.tabCompletion != nil {
					ct.tabCompletion.Reset()
				}
				if len(input) > 0 {
					ct.commandHistory = append(ct.commandHistory, command{input: input})
					if len(ct.commandHistory) > maxHistory {
						ct.commandHistory = ct.commandHistory[1:]
					}
				}
				return string(input), nil

			case easyterm.KeyBackspace, easyterm.KeyDelete:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}

			case easyterm.KeyEsc:
				// only cursor sequences are understood. anything else that
				// follows an escape is swallowed
				rr = <-ct.reader
				if rr.err != nil {
					return "", rr.err
				}
				if rr.r == easyterm.EscCursor {
					rr = <-ct.reader
					if rr.err != nil {
						return "", rr.err
					}

					switch rr.r {
					case easyterm.CursorUp:
						if historyIdx > 0 {
							historyIdx--
							input = append(input[:0], ct.commandHistory[historyIdx].input...)
						}
					case easyterm.CursorDown:
						if historyIdx < len(ct.commandHistory)-1 {
							historyIdx++
							input = append(input[:0], ct.commandHistory[historyIdx].input...)
						} else {
							historyIdx = len(ct.commandHistory)
							input = input[:0]
						}
					}
				}

			default:
				if unicode.IsPrint(rr.r) {
					input = append(input, rr.r)
				}
			}

			ct.refreshLine(prompt, input)

		case sig := <-events.Signal:
			ct.EasyTerm.TermPrint("\n")
			return "", events.SignalHandler(sig)

		case f := <-events.RawEvents:
			f()
			ct.refreshLine(prompt, input)
		}
	}
}

// refreshLine redraws the prompt and the input line being edited.
func (ct *ColorTerminal) refreshLine(prompt terminal.Prompt, input []rune) {
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(ansi.ClearLine)
	ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
	ct.EasyTerm.TermPrint(prompt.String())
	ct.EasyTerm.TermPrint(ansi.NormalPen)
	ct.EasyTerm.TermPrint(string(input))
	_ = ct.Flush()
}
