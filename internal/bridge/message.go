// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"fmt"
	"strconv"
)

// Action names a bridge request.
type Action string

const (
	ActionCheckURL        Action = "checkUrl"
	ActionCheckGameOnly   Action = "checkGameOnly"
	ActionCheckText       Action = "checkText"
	ActionOpenPopup       Action = "openPopup"
	ActionGetSelectedText Action = "getSelectedText"
	ActionGetPageURL      Action = "getPageUrl"
)

// Message is a bridge request.
type Message struct {
	Action   Action   `json:"action"`
	URL      string   `json:"url,omitempty"`
	URLs     []string `json:"urls,omitempty"`
	GameName string   `json:"gameName,omitempty"`
	Text     string   `json:"text,omitempty"`
}

// Response answers a Message. Error is set when Success is false.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Text    string `json:"text,omitempty"`
	URL     string `json:"url,omitempty"`
}

// OK is the plain success acknowledgement.
func OK() Response {
	return Response{Success: true}
}

// Failure converts err into a negative acknowledgement.
func Failure(err error) Response {
	return Response{Success: false, Error: err.Error()}
}

// Endpoint addresses a receiver. The zero value is the coordinator; any
// positive TabID is the page surface of that tab.
type Endpoint struct {
	TabID int
}

// Coordinator is the endpoint of the long-running coordinator.
var Coordinator = Endpoint{}

// Tab returns the endpoint of the page surface in tab id.
func Tab(id int) Endpoint {
	return Endpoint{TabID: id}
}

// IsCoordinator reports whether e addresses the coordinator.
func (e Endpoint) IsCoordinator() bool {
	return e.TabID == 0
}

func (e Endpoint) String() string {
	if e.IsCoordinator() {
		return "coordinator"
	}
	return "tab:" + strconv.Itoa(e.TabID)
}

// ParseTabID parses a tab id path segment. Tab ids are positive.
func ParseTabID(s string) (Endpoint, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return Endpoint{}, fmt.Errorf("%w: %q", ErrInvalidTabID, s)
	}
	return Tab(id), nil
}
