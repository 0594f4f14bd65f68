package washbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"washify/internal/domain/entity"
	domainerrors "washify/internal/domain/errors"
	"washify/internal/errors"
)

// The backend answers in three shapes: a full {success, message, data}
// envelope, a bare {data: ...} wrapper, or the payload itself. All
// shape detection lives here; gateways only see the decoded payload.

type wireEnvelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// decodePayload unwraps a response body into out. When the envelope
// carries success=false, the payload is treated as absent no matter
// what the data field literally contains.
func decodePayload(body []byte, out any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}

	// Bare arrays can never be envelopes, skip the probe.
	if trimmed[0] == '[' {
		return errors.Wrap(json.Unmarshal(trimmed, out), "decode payload")
	}

	var envelope wireEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err == nil && (envelope.Success != nil || envelope.Data != nil) {
		if envelope.Success != nil && !*envelope.Success {
			if envelope.Message != "" {
				return errors.Errorf("backend rejected request: %s", envelope.Message)
			}

			return errors.New("backend rejected request")
		}
		if envelope.Data == nil {
			return nil
		}

		return errors.Wrap(json.Unmarshal(envelope.Data, out), "decode envelope data")
	}

	return errors.Wrap(json.Unmarshal(trimmed, out), "decode payload")
}

// fetchList GETs a collection endpoint. Failures never propagate: the
// caller receives a failed envelope with an empty slice so the list
// view renders "no data" instead of crashing.
func fetchList[T any](ctx context.Context, c *Client, path, what string) entity.Envelope[[]T] {
	body, err := c.Get(ctx, path, nil)
	if err != nil {
		c.logger.Warn("backend list read failed",
			slog.String("entity", what),
			slog.String("path", path),
			slog.Any("error", err))

		return entity.Fail([]T{}, domainerrors.ErrGatewayRead.Message())
	}

	var items []T
	if err := decodePayload(body, &items); err != nil {
		c.logger.Warn("backend list decode failed",
			slog.String("entity", what),
			slog.String("path", path),
			slog.Any("error", err))

		return entity.Fail([]T{}, domainerrors.ErrGatewayRead.Message())
	}
	if items == nil {
		items = []T{}
	}

	return entity.Ok(items)
}

// fetchOne GETs a single-record endpoint with the same no-propagation
// contract as fetchList; the fallback is the zero value.
func fetchOne[T any](ctx context.Context, c *Client, path, what string) entity.Envelope[T] {
	var zero T

	body, err := c.Get(ctx, path, nil)
	if err != nil {
		c.logger.Warn("backend read failed",
			slog.String("entity", what),
			slog.String("path", path),
			slog.Any("error", err))

		return entity.Fail(zero, domainerrors.ErrGatewayRead.Message())
	}

	var item T
	if err := decodePayload(body, &item); err != nil {
		c.logger.Warn("backend decode failed",
			slog.String("entity", what),
			slog.String("path", path),
			slog.Any("error", err))

		return entity.Fail(zero, domainerrors.ErrGatewayRead.Message())
	}

	return entity.Ok(item)
}

// writeOne sends a mutation and decodes the updated record. Unlike the
// read path, errors bubble up to the caller so an optimistic local edit
// can be rolled back; they surface under the GATEWAY_WRITE_FAILED code
// with the backend's own message kept as details.
func writeOne[T any](body []byte, err error) (T, error) {
	var item T
	if err != nil {
		return item, domainerrors.WrapGatewayWrite(err)
	}
	if err := decodePayload(body, &item); err != nil {
		return item, domainerrors.WrapGatewayWrite(err)
	}

	return item, nil
}

// writeOnly sends a mutation whose response body is irrelevant.
func writeOnly(_ []byte, err error) error {
	return domainerrors.WrapGatewayWrite(err)
}
