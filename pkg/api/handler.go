// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pantrykit/pantry/pkg/defaults"
	pantryerrors "github.com/pantrykit/pantry/pkg/errors"
	"github.com/pantrykit/pantry/pkg/ingredient"
	"github.com/pantrykit/pantry/pkg/recipe"
	"github.com/pantrykit/pantry/pkg/recommender"
	"github.com/pantrykit/pantry/pkg/serializer"
	"github.com/pantrykit/pantry/pkg/server"
)

// StockLine is one available ingredient in a request body.
type StockLine struct {
	Item   string         `json:"item" yaml:"item"`
	Amount *recipe.Amount `json:"amount" yaml:"amount"`
	Unit   string         `json:"unit" yaml:"unit"`
	UseBy  string         `json:"useBy,omitempty" yaml:"useBy,omitempty"`
}

// RecommendRequest is the body of POST /v1/recommendation.
type RecommendRequest struct {
	// Date is the evaluation day as dd/MM/yyyy; empty uses the server default.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`

	// StrictUnits overrides the server's unit policy when set.
	StrictUnits *bool `json:"strictUnits,omitempty" yaml:"strictUnits,omitempty"`

	Ingredients []StockLine       `json:"ingredients" yaml:"ingredients"`
	Recipes     []recipe.Document `json:"recipes" yaml:"recipes"`
}

// Stock converts the request lines into stock. A missing use-by date means
// the item never expires; a malformed one is an input error, as is a
// missing amount.
func (r *RecommendRequest) Stock() ([]ingredient.Ingredient, error) {
	stock := make([]ingredient.Ingredient, 0, len(r.Ingredients))
	for i, l := range r.Ingredients {
		name := ingredient.NormalizeName(l.Item)
		if name == "" {
			return nil, lineError(i, "item", "Error reading ingredient: item is required", nil)
		}
		if l.Amount == nil {
			return nil, lineError(i, "amount", "Error reading ingredient: amount is required", nil)
		}
		unit, err := ingredient.ParseUnit(l.Unit)
		if err != nil {
			return nil, lineError(i, "unit", "Error reading ingredient: "+err.Error(), err)
		}
		var useBy ingredient.Expiry
		if err := useBy.UnmarshalText([]byte(l.UseBy)); err != nil {
			return nil, lineError(i, "useBy", "Error parsing date: "+err.Error(), err)
		}
		stock = append(stock, ingredient.Ingredient{
			Name:     name,
			Quantity: int(*l.Amount),
			Unit:     unit,
			Expiry:   useBy,
		})
	}
	return stock, nil
}

func lineError(index int, field, msg string, cause error) error {
	return pantryerrors.WrapWithContext(pantryerrors.ErrCodeInput, msg, cause, map[string]any{
		"ingredient": index,
		"field":      field,
	})
}

// ParseRequest decodes a request body as JSON or YAML depending on
// contentType. An empty or unrecognized content type is read as JSON.
func ParseRequest(body io.Reader, contentType string) (*RecommendRequest, error) {
	var req RecommendRequest
	if err := decodeBody(body, contentType, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func decodeBody(body io.Reader, contentType string, v any) error {
	if body == nil {
		return fmt.Errorf("request body cannot be nil")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("request body is empty")
	}

	ct, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(contentType)), ";")
	switch strings.TrimSpace(ct) {
	case "application/x-yaml", "application/yaml", "text/yaml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML body: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON body: %w", err)
		}
	}
	return nil
}

// Handler serves the recommendation endpoints.
type Handler struct {
	strictUnits bool
	date        ingredient.Date
	version     string
	today       func() ingredient.Date
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithStrictUnits sets the default unit policy for requests that do not set one.
func WithStrictUnits(strict bool) HandlerOption {
	return func(h *Handler) {
		h.strictUnits = strict
	}
}

// WithDate fixes the default evaluation day; the zero Date means today.
func WithDate(d ingredient.Date) HandlerOption {
	return func(h *Handler) {
		h.date = d
	}
}

// WithVersion sets the version stamped into responses.
func WithVersion(version string) HandlerOption {
	return func(h *Handler) {
		h.version = version
	}
}

// NewHandler returns a Handler with the given options.
func NewHandler(opts ...HandlerOption) *Handler {
	h := &Handler{today: ingredient.Today}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the handler's routes for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/recommendation": h.Recommend,
		"/v1/catalog":        h.Catalog,
	}
}

func (h *Handler) evaluationDate(requested string) (ingredient.Date, error) {
	if requested != "" {
		d, err := ingredient.ParseDate(requested)
		if err != nil {
			return ingredient.Date{}, pantryerrors.WrapWithContext(pantryerrors.ErrCodeInput,
				"Error parsing date: "+err.Error(), err, map[string]any{"field": "date"})
		}
		return d, nil
	}
	if !h.date.IsZero() {
		return h.date, nil
	}
	return h.today(), nil
}

// Recommend handles POST /v1/recommendation.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	if !allowPost(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecommendHandlerTimeout)
	defer cancel()

	body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
	defer body.Close()

	req, err := ParseRequest(body, r.Header.Get("Content-Type"))
	if err != nil {
		writeBodyError(w, r, "Invalid recommendation request", err)
		return
	}

	on, err := h.evaluationDate(req.Date)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid evaluation date", nil)
		return
	}

	stock, err := req.Stock()
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid ingredients", nil)
		return
	}

	recipes, err := recipe.FromDocuments(req.Recipes)
	if err != nil {
		server.WriteErrorFromErr(w, r, pantryerrors.Wrap(pantryerrors.ErrCodeInput,
			"Error reading recipe Json: request body", err), "Invalid recipes", nil)
		return
	}

	strict := h.strictUnits
	if req.StrictUnits != nil {
		strict = *req.StrictUnits
	}

	slog.Debug("recommendation request",
		"requestID", server.RequestID(ctx),
		"date", on.String(),
		"strictUnits", strict,
		"ingredients", len(stock),
		"recipes", len(recipes),
	)

	rec, err := recommender.New(
		recommender.WithStrictUnits(strict),
		recommender.WithVersion(h.version),
	).Recommend(ctx, stock, recipes, on)
	if err != nil {
		server.WriteErrorFromErr(w, r, contextError(err), "Failed to recommend recipe", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, rec)
}

// Catalog handles POST /v1/catalog: it validates a recipe list and returns
// it in normalized catalog form.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	if !allowPost(w, r) {
		return
	}

	body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
	defer body.Close()

	var docs []recipe.Document
	if err := decodeBody(body, r.Header.Get("Content-Type"), &docs); err != nil {
		writeBodyError(w, r, "Invalid recipe catalog", err)
		return
	}

	recipes, err := recipe.FromDocuments(docs)
	if err != nil {
		server.WriteErrorFromErr(w, r, pantryerrors.Wrap(pantryerrors.ErrCodeInput,
			"Error reading recipe Json: request body", err), "Invalid recipes", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, recipe.NewCatalog(recipes, h.version))
}

func allowPost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodPost {
		return true
	}
	w.Header().Set("Allow", http.MethodPost)
	server.WriteError(w, r, http.StatusMethodNotAllowed, pantryerrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{http.MethodPost},
		})
	return false
}

func writeBodyError(w http.ResponseWriter, r *http.Request, message string, err error) {
	status := http.StatusBadRequest
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	server.WriteError(w, r, status, pantryerrors.ErrCodeInvalidRequest, message, false,
		map[string]any{"error": err.Error()})
}

func contextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return pantryerrors.Wrap(pantryerrors.ErrCodeTimeout, "Recommendation timed out", err)
	}
	return pantryerrors.Wrap(pantryerrors.ErrCodeUnavailable, "Recommendation canceled", err)
}
