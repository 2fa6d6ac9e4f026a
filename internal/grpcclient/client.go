package grpcclient

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	forwarder "lora-codec-svr/proto"
)

type GRPCClient struct {
	conn   *grpc.ClientConn
	client forwarder.ForwarderClient
}

func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}

	c := forwarder.NewForwarderClient(conn)
	return &GRPCClient{conn: conn, client: c}, nil
}

func (g *GRPCClient) Close() {
	g.conn.Close()
}

// SendReading forwards one decoded reading, JSON-encoded, keyed by device.
func (g *GRPCClient) SendReading(devEUI, readingJSON string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req := &forwarder.DataRequest{
		DevEui:     devEUI,
		RecordJson: readingJSON,
	}

	res, err := g.client.SendData(ctx, req)
	if err != nil {
		return err
	}

	if !res.Success {
		log.Printf("Forwarder: failed to send reading for device %s", devEUI)
	}

	return nil
}
