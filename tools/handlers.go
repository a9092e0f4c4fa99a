package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/clabe-mcp-server/internal/clabe"
	"github.com/olgasafonova/clabe-mcp-server/metrics"
	"github.com/olgasafonova/clabe-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	service *clabe.Service
	logger  *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(service *clabe.Service, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		service: service,
		logger:  logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "Validate":
		register(h, server, tool, spec, h.service.ValidateMCP)
	case "ValidateBatch":
		register(h, server, tool, spec, h.service.ValidateBatchMCP)
	case "ComputeChecksum":
		register(h, server, tool, spec, h.service.ComputeChecksumMCP)
	case "Calculate":
		register(h, server, tool, spec, h.service.CalculateMCP)
	case "GetBank":
		register(h, server, tool, spec, h.service.GetBankMCP)
	case "ListBanks":
		register(h, server, tool, spec, h.service.ListBanksMCP)
	case "GetCity":
		register(h, server, tool, spec, h.service.GetCityMCP)
	case "ListCities":
		register(h, server, tool, spec, h.service.ListCitiesMCP)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
		// MCP assumes open world when the hint is absent, so always set it.
		OpenWorldHint: ptr(spec.OpenWorld),
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the service method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (res *mcp.CallToolResult, out Result, err error) {
		defer h.recoverPanic(spec.Name, &err)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		tracing.AddToolAttributes(span, spec.Name, spec.Category)
		span.SetAttributes(attribute.Bool("mcp.tool.readonly", spec.ReadOnly))

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			tracing.RecordError(span, err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			h.logger.Warn("Tool failed", "tool", spec.Name, "error", err)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers and turns them into
// tool errors.
func (h *HandlerRegistry) recoverPanic(toolName string, errp *error) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
		if errp != nil {
			*errp = fmt.Errorf("%s failed: internal error", toolName)
		}
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "category", spec.Category}

	switch a := args.(type) {
	case clabe.ValidateBatchArgs:
		attrs = append(attrs, "batch_size", len(a.CLABEs))
	case clabe.CalculateArgs:
		attrs = append(attrs, "bank_code", a.BankCode, "city_code", a.CityCode)
	case clabe.GetBankArgs:
		attrs = append(attrs, "code", a.Code)
	case clabe.GetCityArgs:
		attrs = append(attrs, "code", a.Code)
	case clabe.ListBanksArgs:
		attrs = append(attrs, "query", a.Query)
	case clabe.ListCitiesArgs:
		attrs = append(attrs, "query", a.Query)
	}

	switch r := result.(type) {
	case clabe.ValidationResult:
		attrs = append(attrs, "ok", r.OK, "error_kind", r.Kind)
	case clabe.ValidateBatchResult:
		attrs = append(attrs, "valid", r.Valid, "invalid", r.Invalid, "rejected", r.Rejected)
	case clabe.CalculateResult:
		attrs = append(attrs, "registered", r.Registered)
	case clabe.ComputeChecksumResult:
		attrs = append(attrs, "ok", r.OK)
	case clabe.ListBanksResult:
		attrs = append(attrs, "results_count", r.Count)
	case clabe.ListCitiesResult:
		attrs = append(attrs, "results_count", r.Count)
	}

	h.logger.Info("Tool executed", attrs...)
}
