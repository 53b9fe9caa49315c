// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OpenVoyage Labs

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/openvoyage/sdk-go/config"
	"github.com/openvoyage/sdk-go/logger"
	"github.com/openvoyage/sdk-go/models"
)

// Client is the generic API client. Each call is a single synchronous
// request/response cycle: the auth collaborator is checked, headers and body
// are prepared, the request is dispatched, and the response is resolved into
// a typed value or a typed error.
//
// Client keeps no per-call state of its own; the auth collaborator's token
// lifecycle is its internal affair.
type Client struct {
	client *resty.Client
	auth   AuthClient
	sink   CallSink

	logger *logger.Logger
}

// New constructs a [Client] from the API configuration and the auth
// collaborator. It normalises and validates the base URL from
// apiCfg.Endpoint and bounds every call with apiCfg.RequestTimeout. Call
// events are logged through log; use [Client.SetSink] to redirect them.
//
// Returns an error if authClient is nil or apiCfg.Endpoint cannot be parsed
// as a valid URL.
func New(apiCfg config.API, authClient AuthClient, log *logger.Logger) (*Client, error) {
	if authClient == nil {
		return nil, fmt.Errorf("auth client is required")
	}

	endpoint, err := normalizeEndpoint(apiCfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid api endpoint: %w", err)
	}

	restyClient := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(apiCfg.RequestTimeout)

	return &Client{
		client: restyClient,
		auth:   authClient,
		sink:   NewLogSink(log),
		logger: log,
	}, nil
}

// SetSink replaces the call-event sink. A nil sink restores the default
// logging sink.
func (c *Client) SetSink(sink CallSink) {
	if sink == nil {
		sink = NewLogSink(c.logger)
	}
	c.sink = sink
}

// Call sends a single API request and resolves the response.
//
// method is the HTTP verb; url may be absolute or relative to the configured
// endpoint. body is the optional request payload (nil for a bodyless
// request). headers are caller-supplied header values; nil-valued entries
// are dropped, and the default set fills only missing keys. responseShapes
// are the candidate success shapes tried in order (nil defaults to a single
// [NoBody] placeholder, i.e. no body expected). errorShapes maps status
// codes to typed error constructors.
//
// On a 2xx response Call returns the first candidate shape the body decodes
// into, or nil when no candidate matches. On any other status it returns a
// typed error: the registered one for the status code, or [*APIError]. A
// transport failure (timeout, connection error) is returned as a wrapped
// transport error.
func (c *Client) Call(
	ctx context.Context,
	method string,
	url string,
	body any,
	headers map[string]any,
	responseShapes []ResponseShape,
	errorShapes ErrorShapes,
) (any, error) {
	if err := c.auth.RefreshToken(ctx); err != nil {
		return nil, fmt.Errorf("refresh token: %w", err)
	}

	requestHeaders, err := prepareRequestHeaders(headers)
	if err != nil {
		return nil, err
	}
	if authHeader := c.auth.AuthHeader(); authHeader != "" {
		requestHeaders[headerAuthorization] = authHeader
	}

	if len(responseShapes) == 0 {
		responseShapes = []ResponseShape{NoBody}
	}

	method = strings.ToUpper(method)
	request := c.client.R().
		SetContext(ctx).
		SetHeaders(requestHeaders)

	var requestBody []byte
	if !isEmptyBody(body) {
		requestBody, err = marshalRequestBody(body)
		if err != nil {
			return nil, fmt.Errorf("serialize request body: %w", err)
		}
		request.SetBody(requestBody)
	}

	response, err := request.Execute(method, url)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}

	result, decodeFailures, resolveErr := buildResponse(response, responseShapes, errorShapes)

	c.sink.CallCompleted(CallEvent{
		Method:         method,
		URL:            response.Request.URL,
		Headers:        maskHeaders(requestHeaders),
		Body:           string(requestBody),
		StatusCode:     response.StatusCode(),
		DecodeFailures: decodeFailures,
	})

	if resolveErr != nil {
		return nil, resolveErr
	}
	return result, nil
}

// buildResponse resolves a raw response. Non-success statuses always yield a
// typed error; success statuses yield the first candidate shape the body
// decodes into, with per-candidate failures swallowed and counted.
func buildResponse(response *resty.Response, responseShapes []ResponseShape, errorShapes ErrorShapes) (any, int, error) {
	status := response.StatusCode()
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		if mapping, registered := errorShapes[status]; registered {
			errBody, err := decodeErrorBody(mapping.Shape, response.Body())
			if err != nil {
				return nil, 0, fmt.Errorf("decode error response for status %d: %w", status, err)
			}
			return nil, 0, mapping.New(errBody, status)
		}

		return nil, 0, NewAPIError(decodeGenericError(response.Body()), status)
	}

	decodeFailures := 0
	for _, shape := range responseShapes {
		if shape == nil {
			continue
		}

		result, err := shape.Decode(response.Body())
		if err != nil {
			decodeFailures++
			continue
		}
		return result, decodeFailures, nil
	}

	return nil, decodeFailures, nil
}

// decodeGenericError parses an unregistered error body into the generic
// [models.Error] shape. Bodies that are not JSON objects are carried as the
// message verbatim.
func decodeGenericError(body []byte) *models.Error {
	apiError := &models.Error{}
	if err := json.Unmarshal(body, apiError); err != nil {
		return &models.Error{Message: strings.TrimSpace(string(body))}
	}

	return apiError
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty endpoint")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("endpoint must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
