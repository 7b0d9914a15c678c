package tui

import "github.com/MKhiriev/go-customer-service/models"

type loginDoneMsg struct {
	resp models.AuthResponse
	err  error
}

type listLoadedMsg struct {
	items []models.CustomerView
	err   error
}

type customerDeletedMsg struct {
	id  int64
	err error
}

type copiedMsg struct {
	err error
}
