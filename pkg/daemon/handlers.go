package daemon

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/notecalc/notecalc/pkg/config"
	"github.com/notecalc/notecalc/pkg/types"
	"github.com/notecalc/notecalc/pkg/valuation"
	"github.com/notecalc/notecalc/pkg/version"
)

func calculate(c *gin.Context) {
	var req types.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		_ = c.Error(err)
		return
	}

	in := req.Inputs(conf)
	if err := valuation.Validate(in); err != nil {
		resp := types.ErrorResponse{Error: err.Error()}
		var invalid *valuation.InvalidInputError
		if errors.As(err, &invalid) {
			resp.Fields = invalid.Fields
		}
		c.IndentedJSON(http.StatusBadRequest, resp)
		_ = c.Error(err)
		return
	}

	res := valuation.Calculate(in)
	entry := logrus.WithFields(logrus.Fields{
		"requestID": c.GetString(requestIDKey),
		"inputs":    in,
	})
	if res.Degenerate() {
		entry.WithField("nonFinite", res.NonFiniteFields()).Warn("calculation produced non-finite values")
	} else {
		entry.Debug("calculated valuation")
	}

	f := valuation.Formatter{CurrencySymbol: conf.CurrencySymbol()}
	c.IndentedJSON(http.StatusOK, types.NewCalculateResponse(in, res, f))
}

func getConfig(c *gin.Context) {
	fc, err := config.NewRawFileConfigFromConfig(conf)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.IndentedJSON(http.StatusOK, fc)
}

func getExplain(c *gin.Context) {
	html, err := valuation.ExplanationHTML()
	if err != nil {
		logrus.Errorf("getExplain failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}

func getHealthz(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, "ok")
}
