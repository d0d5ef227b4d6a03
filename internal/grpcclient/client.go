package grpcclient

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/example/proctorguard/internal/embedding"
	"github.com/example/proctorguard/internal/extractor"
	"github.com/example/proctorguard/internal/logging"
	proto "github.com/example/proctorguard/proto"
)

// DialFaceExtractor returns a ready-to-use client for the face-extractor
// service. The connection is established eagerly so a misconfigured address
// fails at startup instead of on the first frame.
func DialFaceExtractor(ctx context.Context, addr string, logger *zap.Logger) (extractor.Client, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.dial_face_extractor", "", err)
		logger.Error("failed to dial face extractor", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}
	client := proto.NewFaceExtractorClient(conn)
	return &grpcFaceExtractor{client: client, logger: logger}, conn, nil
}

type grpcFaceExtractor struct {
	client proto.FaceExtractorClient
	logger *zap.Logger
}

func (g *grpcFaceExtractor) Detect(ctx context.Context, image []byte, mode extractor.Mode) ([]extractor.Face, error) {
	resp, err := g.client.DetectFaces(ctx, &proto.DetectRequest{
		ImageData: image,
		DetectAll: mode == extractor.ModeAll,
	})
	if err != nil {
		// The extractor signals an undecodable payload as InvalidArgument,
		// which is a caller problem rather than a model outage.
		if status.Code(err) == codes.InvalidArgument {
			return nil, extractor.ErrImageUndecodable
		}
		wrapped := logging.NewOperationError("grpcclient.detect_faces", "", err)
		g.logger.Error("face extractor call failed", zap.Error(wrapped))
		return nil, wrapped
	}

	faces := make([]extractor.Face, 0, len(resp.GetFaces()))
	for _, f := range resp.GetFaces() {
		face := extractor.Face{Embedding: embedding.Vector(f.GetEmbedding())}
		if box := f.GetBox(); box != nil {
			face.Box = extractor.BoundingBox{
				X:      box.GetX(),
				Y:      box.GetY(),
				Width:  box.GetWidth(),
				Height: box.GetHeight(),
			}
		}
		faces = append(faces, face)
	}
	return faces, nil
}
