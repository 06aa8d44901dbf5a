package client

import (
	"encoding/json"
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/notecalc/notecalc/pkg/config"
	"github.com/notecalc/notecalc/pkg/types"
	"github.com/notecalc/notecalc/pkg/valuation"
)

// Calculate asks the daemon to evaluate req. Validation failures are
// returned as a *valuation.InvalidInputError.
func (c *Client) Calculate(req types.CalculateRequest) (*types.CalculateResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to marshal calculate request")
	}

	ret, err := c.Post("/calculate", string(payload))
	if err != nil {
		if errors.Is(err, ErrBadRequest) {
			var er types.ErrorResponse
			if jsonErr := json.Unmarshal([]byte(ret), &er); jsonErr == nil && len(er.Fields) > 0 {
				return nil, &valuation.InvalidInputError{Fields: er.Fields}
			}
		}
		return nil, pkgerrors.Wrapf(err, "failed to calculate")
	}

	var resp types.CalculateResponse
	if err := json.Unmarshal([]byte(ret), &resp); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal calculate response")
	}
	return &resp, nil
}

func (c *Client) GetConfig() (*config.RawFileConfig, error) {
	ret, err := c.Get("/config")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get config")
	}

	var conf config.RawFileConfig
	if err := json.Unmarshal([]byte(ret), &conf); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal config")
	}

	return &conf, nil
}

func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get version")
	}

	var v string
	if err := json.Unmarshal([]byte(ret), &v); err != nil {
		return "", pkgerrors.Wrapf(err, "failed to unmarshal version")
	}
	return v, nil
}

func (c *Client) GetExplanation() (string, error) {
	ret, err := c.Get("/explain")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get explanation")
	}
	return ret, nil
}
