package llm

import (
	"context"
	"fmt"
	"time"

	pb "github.com/weftworks/weft/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// SidecarProvider calls a co-located inference service over gRPC instead of a
// vendor HTTP API. Used by deployments that front their models locally.
type SidecarProvider struct {
	conn   *grpc.ClientConn
	client pb.LLMServiceClient
	model  string
}

// NewSidecarProvider dials the sidecar at addr.
func NewSidecarProvider(addr, model string) (*SidecarProvider, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM sidecar: %w", err)
	}
	return &SidecarProvider{
		conn:   conn,
		client: pb.NewLLMServiceClient(conn),
		model:  model,
	}, nil
}

// Close releases the gRPC connection.
func (p *SidecarProvider) Close() error {
	return p.conn.Close()
}

// Name implements Provider.
func (p *SidecarProvider) Name() string { return "sidecar" }

// Model implements Provider.
func (p *SidecarProvider) Model() string { return p.model }

// Generate implements Provider.
func (p *SidecarProvider) Generate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	resp, err := p.client.Generate(ctx, &pb.GenerateRequest{
		Model:         p.model,
		SystemMessage: req.SystemMessage,
		Prompt:        req.Prompt,
		Temperature:   req.Temperature,
		MaxTokens:     int32(req.MaxTokens),
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		st, _ := status.FromError(err)
		retryable := st.Code() == codes.Unavailable || st.Code() == codes.DeadlineExceeded ||
			st.Code() == codes.ResourceExhausted
		return nil, &Error{Provider: "sidecar", Kind: st.Code().String(), Message: st.Message(), Retryable: retryable}
	}
	if resp.Error != "" {
		return nil, &Error{Provider: "sidecar", Kind: "api", Message: resp.Error}
	}

	latency := int(resp.ResponseTimeMs)
	if latency == 0 {
		latency = elapsedMs(start)
	}
	return &Result{
		Text:           resp.Text,
		TokenCount:     int(resp.TokenCount),
		ResponseTimeMs: latency,
	}, nil
}
