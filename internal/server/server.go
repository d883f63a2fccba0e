package server

import (
	"github.com/qdm12/goservices/httpserver"
)

// New creates the HTTP server exposing the control surface of the
// entries under rootURL.
func New(address, rootURL string, db Database, logger Logger,
	updateForcer UpdateForcer, displayer Displayer) (
	server *httpserver.Server, err error) {
	name := "http"
	return httpserver.New(httpserver.Settings{
		Handler: newHandler(rootURL, db, updateForcer, displayer, logger),
		Name:    &name,
		Address: &address,
		Logger:  logger,
	})
}
