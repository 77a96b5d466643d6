// Package api implements the HTTP handlers for building, splitting and
// resolving ARNs.
package api

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/benkehoe/aws-arn/api/io"
	"github.com/benkehoe/aws-arn/pkg/arn"
	"github.com/benkehoe/aws-arn/pkg/cfn"
	"github.com/benkehoe/aws-arn/pkg/rules"
	"github.com/benkehoe/aws-arn/pkg/tf"
)

// Handlers holds the dependencies of the ARN API endpoints.
type Handlers struct {
	Log     *zap.SugaredLogger
	Tracer  trace.Tracer
	Builder *arn.Builder
	Rules   *rules.Ruleset
}

type BuildRequest struct {
	Service      string `json:"service"`
	Resource     string `json:"resource"`
	Region       string `json:"region,omitempty"`
	Account      string `json:"account,omitempty"`
	Partition    string `json:"partition,omitempty"`
	Profile      string `json:"profile,omitempty"`
	ForceRegion  *bool  `json:"forceRegion,omitempty"`
	ForceAccount *bool  `json:"forceAccount,omitempty"`
}

type BuildResponse struct {
	ARN string `json:"arn"`
}

// Build assembles a literal ARN from the request fields.
func (h *Handlers) Build(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.Tracer.Start(r.Context(), "Build")
	defer span.End()

	var req BuildRequest
	if err := io.DecodeJSONBody(w, r, &req); err != nil {
		io.RespondError(ctx, h.Log, w, err)
		return
	}

	a, err := h.Builder.Build(ctx, arn.BuildInput{
		Service:      req.Service,
		Resource:     req.Resource,
		Region:       req.Region,
		Account:      req.Account,
		Partition:    req.Partition,
		Profile:      req.Profile,
		ForceRegion:  req.ForceRegion,
		ForceAccount: req.ForceAccount,
	})
	if err != nil {
		var missing *arn.MissingFieldsError
		if errors.As(err, &missing) {
			io.RespondError(ctx, h.Log, w, io.NewRequestError(err, http.StatusBadRequest))
			return
		}
		// a credentials lookup failed upstream of us
		io.RespondError(ctx, h.Log, w, io.NewRequestError(err, http.StatusBadGateway))
		return
	}

	io.RespondJSON(ctx, h.Log, w, BuildResponse{ARN: a.String()}, http.StatusOK)
}

type SplitRequest struct {
	ARN string `json:"arn"`
}

// Split parses an ARN into its fields.
func (h *Handlers) Split(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.Tracer.Start(r.Context(), "Split")
	defer span.End()

	var req SplitRequest
	if err := io.DecodeJSONBody(w, r, &req); err != nil {
		io.RespondError(ctx, h.Log, w, err)
		return
	}

	a, err := arn.Split(req.ARN)
	if err != nil {
		io.RespondError(ctx, h.Log, w, io.NewRequestError(err, http.StatusBadRequest))
		return
	}

	io.RespondJSON(ctx, h.Log, w, a, http.StatusOK)
}

type ResolveRequest struct {
	Service      string `json:"service"`
	Resource     string `json:"resource,omitempty"`
	ForceRegion  *bool  `json:"forceRegion,omitempty"`
	ForceAccount *bool  `json:"forceAccount,omitempty"`
}

// Resolve reports which fields the rule table requires for a service
// and resource.
func (h *Handlers) Resolve(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.Tracer.Start(r.Context(), "Resolve")
	defer span.End()

	var req ResolveRequest
	if err := io.DecodeJSONBody(w, r, &req); err != nil {
		io.RespondError(ctx, h.Log, w, err)
		return
	}

	requirement := h.Rules.Resolve(req.Service, req.Resource, rules.Force{
		Region:  req.ForceRegion,
		Account: req.ForceAccount,
	})

	io.RespondJSON(ctx, h.Log, w, requirement, http.StatusOK)
}

type SymbolicRequest struct {
	Service      string        `json:"service"`
	Resource     []interface{} `json:"resource"`
	ForceRegion  *bool         `json:"forceRegion,omitempty"`
	ForceAccount *bool         `json:"forceAccount,omitempty"`
}

// symbolicInput converts the request's resource parts into engine
// values: JSON strings stay literal, {"Ref": "..."} objects become refs
// through wrap, and anything else is rejected.
func (r SymbolicRequest) symbolicInput(wrap func(name string) interface{}) (arn.SymbolicInput, error) {
	parts := make([]interface{}, 0, len(r.Resource))
	for i, part := range r.Resource {
		switch v := part.(type) {
		case string:
			parts = append(parts, v)
		case map[string]interface{}:
			name, ok := v["Ref"].(string)
			if !ok || len(v) != 1 {
				return arn.SymbolicInput{}, fmt.Errorf("resource part %d must be a string or {\"Ref\": name}", i)
			}
			parts = append(parts, wrap(name))
		default:
			return arn.SymbolicInput{}, fmt.Errorf("resource part %d must be a string or {\"Ref\": name}", i)
		}
	}
	return arn.SymbolicInput{
		Service:      r.Service,
		Resource:     parts,
		ForceRegion:  r.ForceRegion,
		ForceAccount: r.ForceAccount,
	}, nil
}

// CloudFormation assembles a CloudFormation Fn::Join expression for
// the request.
func (h *Handlers) CloudFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.Tracer.Start(r.Context(), "CloudFormation")
	defer span.End()

	var req SymbolicRequest
	if err := io.DecodeJSONBody(w, r, &req); err != nil {
		io.RespondError(ctx, h.Log, w, err)
		return
	}

	in, err := req.symbolicInput(func(name string) interface{} {
		return cfn.Ref{Ref: name}
	})
	if err != nil {
		io.RespondError(ctx, h.Log, w, io.NewRequestError(err, http.StatusBadRequest))
		return
	}

	node := h.Builder.Symbolic(cfn.Symbols{}, in)
	io.RespondJSON(ctx, h.Log, w, node, http.StatusOK)
}

type TerraformRequest struct {
	SymbolicRequest
	Name string `json:"name,omitempty"`
}

type TerraformResponse struct {
	Expression string `json:"expression"`
	File       string `json:"file"`
}

// Terraform assembles a Terraform interpolation for the request, plus a
// rendered .tf file declaring the data sources it depends on.
func (h *Handlers) Terraform(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.Tracer.Start(r.Context(), "Terraform")
	defer span.End()

	var req TerraformRequest
	if err := io.DecodeJSONBody(w, r, &req); err != nil {
		io.RespondError(ctx, h.Log, w, err)
		return
	}

	in, err := req.symbolicInput(func(name string) interface{} {
		return tf.Expr("${" + name + "}")
	})
	if err != nil {
		io.RespondError(ctx, h.Log, w, io.NewRequestError(err, http.StatusBadRequest))
		return
	}

	expr, ok := h.Builder.Symbolic(tf.Symbols{}, in).(tf.Expr)
	if !ok {
		io.RespondError(ctx, h.Log, w, errors.New("terraform renderer returned unexpected type"))
		return
	}

	name := req.Name
	if name == "" {
		name = "arn"
	}

	io.RespondJSON(ctx, h.Log, w, TerraformResponse{
		Expression: string(expr),
		File:       string(tf.File(name, req.Service, expr)),
	}, http.StatusOK)
}

type ListRulesResponse struct {
	Rules       []rules.Rule `json:"rules"`
	Count       int          `json:"count"`
	Fingerprint string       `json:"fingerprint"`
}

// ListRules returns the rule table the server is running with.
func (h *Handlers) ListRules(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.Tracer.Start(r.Context(), "ListRules")
	defer span.End()

	fp, err := h.Rules.Fingerprint()
	if err != nil {
		io.RespondError(ctx, h.Log, w, errors.Wrap(err, "fingerprinting rule table"))
		return
	}

	io.RespondJSON(ctx, h.Log, w, ListRulesResponse{
		Rules:       h.Rules.Rules(),
		Count:       h.Rules.Len(),
		Fingerprint: fmt.Sprintf("%016x", fp),
	}, http.StatusOK)
}
