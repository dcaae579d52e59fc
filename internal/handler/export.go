package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"dailytodo/internal/export"
	"dailytodo/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// writePDF renders the sheet into memory first so a rendering failure can still
// become a JSON error response.
func writePDF(c *gin.Context, users UserLookup, renderer SheetRenderer, userID uuid.UUID, date time.Time, tasks []model.Task, filename string) {
	user, err := users.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	sheet := export.Sheet{Username: user.Username, Date: date, Tasks: tasks}
	if err := renderer.Render(&buf, sheet); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
