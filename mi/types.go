/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package mi

import "github.com/nabbar/gdbwire/miparse"

// These aliases let callers of this package work with the Output/Result
// data model without a second import; miparse remains the single owner of
// the types (the driver must be able to call into the parser without
// creating an import cycle back into mi).
type (
	Output       = miparse.Output
	OutputKind   = miparse.OutputKind
	ResultRecord = miparse.ResultRecord
	ResultClass  = miparse.ResultClass
	OOBRecord    = miparse.OOBRecord
	OOBKind      = miparse.OOBKind
	AsyncRecord  = miparse.AsyncRecord
	AsyncKind    = miparse.AsyncKind
	AsyncClass   = miparse.AsyncClass
	StreamRecord = miparse.StreamRecord
	StreamKind   = miparse.StreamKind
	Result       = miparse.Result
	ResultKind   = miparse.ResultKind
)

const (
	OutOfBand        = miparse.OutOfBand
	ResultOutput     = miparse.ResultOutput
	PromptOutput     = miparse.PromptOutput
	ParseErrorOutput = miparse.ParseErrorOutput

	ClassDone        = miparse.ClassDone
	ClassRunning     = miparse.ClassRunning
	ClassConnected   = miparse.ClassConnected
	ClassError       = miparse.ClassError
	ClassExit        = miparse.ClassExit
	ClassUnsupported = miparse.ClassUnsupported

	AsyncRecordKind  = miparse.AsyncRecordKind
	StreamRecordKind = miparse.StreamRecordKind

	AsyncExec   = miparse.AsyncExec
	AsyncStatus = miparse.AsyncStatus
	AsyncNotify = miparse.AsyncNotify

	StreamConsole = miparse.StreamConsole
	StreamTarget  = miparse.StreamTarget
	StreamLog     = miparse.StreamLog

	CStringKind = miparse.CStringKind
	TupleKind   = miparse.TupleKind
	ListKind    = miparse.ListKind
)
