package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
	"github.com/aleister1102/offerguard/internal/httpclient"
	"github.com/rs/zerolog"
)

// DefaultModel is the inference model used when no endpoint override is set.
const DefaultModel = "distilbert-base-uncased-finetuned-sst-2-english"

// Classifier labels a text with a polarity and a confidence in [0,1].
type Classifier interface {
	Classify(ctx context.Context, text string) (label string, confidence float64, err error)
}

// inferenceRequest is the HuggingFace inference payload.
type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// HuggingFaceClassifier calls a HuggingFace-style text classification endpoint.
type HuggingFaceClassifier struct {
	client   *httpclient.HTTPClient
	endpoint string
	apiKey   string
	logger   zerolog.Logger
}

// NewHuggingFaceClassifier creates a classifier for endpoint. apiKey may be
// empty for endpoints that do not require authentication.
func NewHuggingFaceClassifier(client *httpclient.HTTPClient, endpoint, apiKey string, logger zerolog.Logger) *HuggingFaceClassifier {
	return &HuggingFaceClassifier{
		client:   client,
		endpoint: endpoint,
		apiKey:   apiKey,
		logger:   logger.With().Str("component", "HuggingFaceClassifier").Logger(),
	}
}

// Classify returns the highest scoring label. The endpoint may answer with
// either a nested [[...]] or a flat [...] list of label scores.
func (c *HuggingFaceClassifier) Classify(ctx context.Context, text string) (string, float64, error) {
	headers := map[string]string{}
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}

	var raw json.RawMessage
	if err := c.client.PostJSON(ctx, c.endpoint, headers, inferenceRequest{Inputs: text}, &raw); err != nil {
		return "", 0, classifyStatus(err)
	}

	scores, err := decodeScores(raw)
	if err != nil {
		return "", 0, err
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	c.logger.Debug().Str("label", scores[0].Label).Float64("score", scores[0].Score).Msg("Classifier responded")
	return scores[0].Label, scores[0].Score, nil
}

func decodeScores(raw json.RawMessage) ([]labelScore, error) {
	var nested [][]labelScore
	if err := json.Unmarshal(raw, &nested); err != nil {
		var flat []labelScore
		if errFlat := json.Unmarshal(raw, &flat); errFlat != nil {
			return nil, errorwrapper.WrapError(errorwrapper.ErrServiceUnavailable, "unexpected classifier response shape")
		}
		nested = [][]labelScore{flat}
	}

	var scores []labelScore
	for _, group := range nested {
		scores = append(scores, group...)
	}
	if len(scores) == 0 {
		return nil, errorwrapper.WrapError(errorwrapper.ErrServiceUnavailable, "classifier returned no labels")
	}
	return scores, nil
}

// classifyStatus maps credential and quota refusals onto ErrQuotaExceeded and
// model warm-up responses onto ErrServiceUnavailable.
func classifyStatus(err error) error {
	var httpErr *errorwrapper.HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}
	switch httpErr.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return errorwrapper.WrapError(errorwrapper.ErrQuotaExceeded, err.Error())
	case http.StatusServiceUnavailable:
		return errorwrapper.WrapError(errorwrapper.ErrServiceUnavailable, err.Error())
	}
	return err
}
