package handlers

import (
	"ChronicStable/repositories"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRespondDataErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: patient 99 does not exist", repositories.ErrIntegrity), http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: %q", repositories.ErrInvalidStatus, "pending"), http.StatusBadRequest},
		{fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondDataError(c, tc.err)
		if w.Code != tc.want {
			t.Errorf("respondDataError(%v) = %d, want %d", tc.err, w.Code, tc.want)
		}
	}
}
