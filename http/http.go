// Package http exposes the payment core over HTTP: a gin middleware that
// gates resources behind a 402 challenge, and a facilitator verify endpoint.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nova402/novax402/encoding"
	"github.com/nova402/novax402/facilitator"
	"github.com/nova402/novax402/types"
)

// PaymentHeader carries the base64-encoded payment envelope on a request.
const PaymentHeader = "X-Payment"

// payerKey is the gin context key under which the middleware stores the
// verified payer address.
const payerKey = "x402.payer"

// PaymentMiddleware returns a gin middleware that requires a valid payment
// for every request it guards. Requests without a payment header, or with one
// that fails verification, receive a 402 challenge advertising the
// requirements. On success the verified payer address is stored on the
// context for handlers to read via Payer.
func PaymentMiddleware(requirements types.PaymentRequirements, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(PaymentHeader)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusPaymentRequired,
				types.New402Response([]types.PaymentRequirements{requirements}, "payment required"))
			return
		}

		payload, err := encoding.DecodePaymentFromBase64(header)
		if err != nil {
			logger.Debug().Err(err).Msg("rejecting undecodable payment header")
			c.AbortWithStatusJSON(http.StatusPaymentRequired,
				types.New402Response([]types.PaymentRequirements{requirements}, err.Error()))
			return
		}

		result := facilitator.Verify(payload, &requirements, time.Now().Unix())
		if !result.IsValid {
			logger.Info().
				Str("reason", result.InvalidReason).
				Str("payer", result.Payer).
				Str("resource", requirements.Resource).
				Msg("payment rejected")
			c.AbortWithStatusJSON(http.StatusPaymentRequired,
				types.New402Response([]types.PaymentRequirements{requirements}, result.InvalidReason))
			return
		}

		logger.Info().
			Str("payer", result.Payer).
			Str("resource", requirements.Resource).
			Msg("payment accepted")
		c.Set(payerKey, result.Payer)
		c.Next()
	}
}

// Payer returns the verified payer address stored by PaymentMiddleware, or
// the empty string when the request carried no verified payment.
func Payer(c *gin.Context) string {
	payer, _ := c.Get(payerKey)
	s, _ := payer.(string)
	return s
}

// verifyRequest is the body of a POST /verify call.
type verifyRequest struct {
	PaymentPayload      *types.PaymentPayload      `json:"paymentPayload"`
	PaymentRequirements *types.PaymentRequirements `json:"paymentRequirements"`
}

// VerifyHandler returns the facilitator verify endpoint handler. It accepts
// a payload and the requirements it claims to satisfy and returns the
// verification result without settling anything.
func VerifyHandler(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req verifyRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		result := facilitator.Verify(req.PaymentPayload, req.PaymentRequirements, time.Now().Unix())
		if !result.IsValid {
			logger.Info().
				Str("reason", result.InvalidReason).
				Str("payer", result.Payer).
				Msg("verification failed")
		}
		c.JSON(http.StatusOK, result)
	}
}

// NewRouter assembles a gin engine exposing the facilitator verify endpoint.
func NewRouter(logger zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.POST("/verify", VerifyHandler(logger))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}
