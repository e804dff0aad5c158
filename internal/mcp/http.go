package mcp

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tomwassing/brane"
)

// NewHTTPHandler mounts the MCP server on /mcp next to the platform
// health and version endpoints.
func NewHTTPHandler(server *mcp.Server) http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	router := mux.NewRouter()
	router.Handle("/mcp", streamable)
	router.HandleFunc("/health", healthHandler).Methods("GET")
	router.HandleFunc("/version", versionHandler).Methods("GET")
	return router
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "OK!\n")
}

func versionHandler(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, brane.Version)
}
