// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/samber/lo"
)

// mapHTTPError returns nil for 2xx responses and an [*APIError] otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Detail:     extractDetail(resp.Body()),
	}
}

// validationIssue is one entry of a FastAPI 422 detail list.
type validationIssue struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// extractDetail reads the "detail" field of an error body. A string is used
// as is; a validation list is flattened to "field: msg; field: msg". Anything
// else yields GenericAPIError.
func extractDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return GenericAPIError
	}

	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
		if detail = strings.TrimSpace(detail); detail != "" {
			return detail
		}
		return GenericAPIError
	}

	var issues []validationIssue
	if err := json.Unmarshal(envelope.Detail, &issues); err == nil {
		parts := lo.FilterMap(issues, func(it validationIssue, _ int) (string, bool) {
			if it.Msg == "" {
				return "", false
			}
			if field := issueField(it.Loc); field != "" {
				return field + ": " + it.Msg, true
			}
			return it.Msg, true
		})
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}

	return GenericAPIError
}

// issueField joins the location path without the leading "body" segment.
func issueField(loc []any) string {
	if len(loc) > 0 && loc[0] == "body" {
		loc = loc[1:]
	}
	return strings.Join(lo.Map(loc, func(p any, _ int) string {
		if f, ok := p.(float64); ok {
			return fmt.Sprintf("%d", int(f))
		}
		return fmt.Sprint(p)
	}), ".")
}
