// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/internal/utils"
)

// HTTPSender delivers messages to a bridge served by another process.
type HTTPSender struct {
	client  *utils.HTTPClient
	baseURL string
	logger  *logger.Logger
}

// NewHTTPSender returns a Sender posting to the bridge at baseURL,
// e.g. "http://127.0.0.1:8765". A zero timeout waits for the receiver to
// answer however long its check takes.
func NewHTTPSender(baseURL string, timeout time.Duration, log *logger.Logger) *HTTPSender {
	return &HTTPSender{
		client:  utils.NewHTTPClient(timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  log.WithComponent("bridge-sender"),
	}
}

func (s *HTTPSender) Send(ctx context.Context, to Endpoint, msg Message) (Response, error) {
	path := PathMessage
	if !to.IsCoordinator() {
		path = strings.Replace(PathTabMessage, "{tabID}", strconv.Itoa(to.TabID), 1)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(msg).
		Post(s.baseURL + path)
	if err != nil {
		if notDelivered(err) {
			s.logger.Debug().Err(err).Str("func", "HTTPSender.Send").Str("endpoint", to.String()).Msg("bridge unreachable")
			return Response{}, fmt.Errorf("%w: %w: %w", ErrTransportFailure, ErrUnreachable, err)
		}
		s.logger.Err(err).Str("func", "HTTPSender.Send").Str("endpoint", to.String()).Msg("bridge request failed")
		return Response{}, fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return Response{}, ErrNoReceiver
	}

	var out Response
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return Response{}, fmt.Errorf("%w: status %d: %w", ErrTransportFailure, resp.StatusCode(), err)
	}
	return out, nil
}

// notDelivered reports a failure to connect. Anything later may have reached
// the receiver.
func notDelivered(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
