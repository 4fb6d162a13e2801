package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/gateway/slcore"
	"github.com/uber/slcore-bridge/src/slbridge/internal/errors"
	"go.lsp.dev/jsonrpc2"
)

// RequestToSolutionDidOpenParams maps the parameters from a jsonrpc2.Request into entity.SolutionDidOpenParams.
func RequestToSolutionDidOpenParams(req jsonrpc2.Request) (*entity.SolutionDidOpenParams, error) {
	params := entity.SolutionDidOpenParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	if params.Name == "" {
		return nil, errors.ErrMissingScopeID
	}
	return &params, nil
}

// RequestToSolutionDidChangeBindingParams maps the parameters from a jsonrpc2.Request into entity.SolutionDidChangeBindingParams.
func RequestToSolutionDidChangeBindingParams(req jsonrpc2.Request) (*entity.SolutionDidChangeBindingParams, error) {
	params := entity.SolutionDidChangeBindingParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToConnectionDidChangeCredentialsParams maps the parameters from a jsonrpc2.Request into entity.ConnectionDidChangeCredentialsParams.
func RequestToConnectionDidChangeCredentialsParams(req jsonrpc2.Request) (*entity.ConnectionDidChangeCredentialsParams, error) {
	params := entity.ConnectionDidChangeCredentialsParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToAnalyzeParams maps the parameters from a jsonrpc2.Request into entity.AnalyzeParams.
func RequestToAnalyzeParams(req jsonrpc2.Request) (*entity.AnalyzeParams, error) {
	params := entity.AnalyzeParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	if params.FileURI == "" {
		return nil, wrapErrParse(errors.New("fileUri is required"))
	}
	return &params, nil
}

// RequestToCancelAnalysisParams maps the parameters from a jsonrpc2.Request into entity.CancelAnalysisParams.
func RequestToCancelAnalysisParams(req jsonrpc2.Request) (*entity.CancelAnalysisParams, error) {
	params := entity.CancelAnalysisParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToDidChangeAnalysisReadinessParams maps the parameters from a backend jsonrpc2.Request into slcore.DidChangeAnalysisReadinessParams.
func RequestToDidChangeAnalysisReadinessParams(req jsonrpc2.Request) (*slcore.DidChangeAnalysisReadinessParams, error) {
	params := slcore.DidChangeAnalysisReadinessParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

func unmarshalParams(req jsonrpc2.Request, v any) error {
	if err := json.Unmarshal(req.Params(), v); err != nil {
		return wrapErrParse(err)
	}
	return nil
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%w: %w", errors.ErrParseParams, err)
}
