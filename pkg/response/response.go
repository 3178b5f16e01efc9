// Package response holds the JSON helpers every handler uses for binding
// and error replies.
package response

import (
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"

	"taskboard-backend/pkg/apperror"
	"taskboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// Error writes {"error": ...} with the status matching the error kind.
// Internal errors are logged and replaced by a generic message.
func Error(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[API] %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": apperror.PublicMessage(err)})
}

// BindJSON binds and validates the body, answering 400 on failure.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return false
	}
	return true
}

// AllowQuery answers 400 when the request carries a query parameter outside allowed.
func AllowQuery(c *gin.Context, allowed ...string) bool {
	known := make(map[string]struct{}, len(allowed))
	for _, key := range allowed {
		known[key] = struct{}{}
	}
	var unknown []string
	for key := range c.Request.URL.Query() {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return true
	}
	sort.Strings(unknown)
	c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown query parameter: %s", unknown[0])})
	return false
}

// OptionalBool parses "true"/"false"; an absent parameter yields nil.
func OptionalBool(c *gin.Context, key string) (*bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	switch raw {
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	}
	return nil, apperror.Validation(fmt.Sprintf("%s must be true or false", key))
}

// OptionalString returns nil when the parameter is absent or empty.
func OptionalString(c *gin.Context, key string) *string {
	if raw := c.Query(key); raw != "" {
		return &raw
	}
	return nil
}

// IntQuery parses an integer query parameter, falling back to def when absent.
func IntQuery(c *gin.Context, key string, def, lowest int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lowest {
		return 0, apperror.Validation(fmt.Sprintf("%s must be an integer >= %d", key, lowest))
	}
	return v, nil
}
