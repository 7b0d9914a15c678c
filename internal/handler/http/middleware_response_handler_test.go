// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_WriteCountsBytes(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n1, err := w.Write([]byte("hello "))
	assert.NoError(t, err)
	n2, err := w.Write([]byte("world"))
	assert.NoError(t, err)

	assert.Equal(t, 6, n1)
	assert.Equal(t, 5, n2)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, "hello world", rr.Body.String())
}

func TestResponseWriter_StatusOrOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, w.statusOrOK())

	w.WriteHeader(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, w.statusOrOK())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
	assert.NoError(t, http.NewResponseController(w).Flush())
	assert.True(t, rr.Flushed)
}
