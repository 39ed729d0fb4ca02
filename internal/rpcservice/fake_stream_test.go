package rpcservice

import (
	"context"

	"google.golang.org/grpc/metadata"

	"github.com/shiva/reservation/internal/rsvppb"
)

// fakeListenStream implements rsvppb.ReservationService_ListenServer
// just enough to drive TestListen_StreamsNotifierEvents: a context for
// cancellation and a channel collecting sent responses.
type fakeListenStream struct {
	ctx  context.Context
	sent chan *rsvppb.ListenResponse
}

func newFakeListenStream(ctx context.Context) *fakeListenStream {
	return &fakeListenStream{ctx: ctx, sent: make(chan *rsvppb.ListenResponse, 8)}
}

func (s *fakeListenStream) Send(r *rsvppb.ListenResponse) error {
	s.sent <- r
	return nil
}

func (s *fakeListenStream) SetHeader(metadata.MD) error  { return nil }
func (s *fakeListenStream) SendHeader(metadata.MD) error { return nil }
func (s *fakeListenStream) SetTrailer(metadata.MD)       {}
func (s *fakeListenStream) Context() context.Context     { return s.ctx }
func (s *fakeListenStream) SendMsg(m interface{}) error  { return nil }
func (s *fakeListenStream) RecvMsg(m interface{}) error  { return nil }
