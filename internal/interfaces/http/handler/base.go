package handler

import (
	"net/http"

	"github.com/acme/dashboard/internal/application/actions"
	"github.com/gin-gonic/gin"
)

// ginNavigator issues the post-mutation redirect through the gin response.
// Redirect and payload writes are mutually exclusive on a response, so an
// action that navigates must not also produce a state.
type ginNavigator struct {
	c *gin.Context
}

// NavigateTo sends the client to the given dashboard path
func (n *ginNavigator) NavigateTo(path string) {
	n.c.Redirect(http.StatusSeeOther, path)
}

// writeActionState renders the outcome of a form action. A nil state with
// no redirect written means the action completed without a response body.
func writeActionState(c *gin.Context, state *actions.ActionState) {
	if state == nil {
		if !c.Writer.Written() {
			c.Status(http.StatusNoContent)
		}
		return
	}
	if len(state.Errors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, state)
		return
	}
	c.JSON(http.StatusInternalServerError, state)
}

// multipartFormMemory bounds how much of a multipart body is held in
// memory while parsing; the rest spills to temp files.
const multipartFormMemory = 10 << 20

// parseForm parses the request form, answering 400 on malformed bodies.
// Forms arrive either url-encoded or as multipart/form-data; multipart
// field values are merged into Request.PostForm by the parser.
// Returns false when the request was already answered.
func parseForm(c *gin.Context) bool {
	var err error
	if c.ContentType() == "multipart/form-data" {
		err = c.Request.ParseMultipartForm(multipartFormMemory)
	} else {
		err = c.Request.ParseForm()
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Malformed form body."})
		return false
	}
	return true
}
