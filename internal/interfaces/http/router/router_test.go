package router

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"shopdata/internal/interfaces/http/handler"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, handler.NewReportHandler(nil, nil))

	var paths []string
	for _, route := range r.Routes() {
		paths = append(paths, route.Method+" "+route.Path)
	}
	assert.ElementsMatch(t, []string{
		"GET /healthz",
		"GET /api/reports",
		"GET /api/reports/:name",
		"GET /api/verify",
	}, paths)
}
