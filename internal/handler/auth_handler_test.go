package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	app := setupApp(t, nil, nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			body:       `{"student_id": 1, "password": "1234"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"student_id":1,"message":"Login successful"}`,
		},
		{
			name:       "unknown student",
			body:       `{"student_id": 77, "password": "1234"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"success":false,"student_id":null,"message":"Student ID not found"}`,
		},
		{
			name:       "wrong password",
			body:       `{"student_id": 2, "password": "0000"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"success":false,"student_id":null,"message":"Incorrect demo password (use 1234)"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, http.MethodPost, "/api/login", []byte(tt.body))
			assert.Equal(t, tt.wantStatus, status)
			assert.JSONEq(t, tt.wantBody, string(body))
		})
	}
}

func TestLogin_BadRequests(t *testing.T) {
	app := setupApp(t, nil, nil)

	status, body := doRequest(t, app, http.MethodPost, "/api/login", []byte(`{"password": "1234"}`))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(body), "student_id")

	status, body = doRequest(t, app, http.MethodPost, "/api/login", []byte(`{not json`))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(body), "INVALID_INPUT")
}
