package tui

import "github.com/MKhiriev/go-inventory-keeper/models"

type pageLoadedMsg struct {
	query models.Query
	page  models.Page
	err   error
}

type syncDoneMsg struct {
	result models.SyncResult
	err    error
}

type deleteDoneMsg struct {
	ack models.Ack
	err error
}

type copiedMsg struct {
	serial string
	err    error
}

type clearStatusMsg struct{}
