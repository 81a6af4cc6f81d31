package ui

import "sizef/internal/scan"

type entryMsg struct {
	E scan.Entry
}

type scanDoneMsg struct {
	R   scan.Result
	Err error
}
