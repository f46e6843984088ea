package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"tycho/api/grpcserver"
	"tycho/api/pb"
	"tycho/domain/orderbook"
	"tycho/infra/config"
	"tycho/infra/kafka"
	"tycho/infra/memory"
	entrywal "tycho/infra/wal/entry"
	exitwal "tycho/infra/wal/exit"
	"tycho/jobs/broadcaster"
	"tycho/jobs/depthfeed"
	"tycho/service"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ---------------- Durability ----------------

	entryWAL, err := entrywal.Open(entrywal.Config{
		Dir:         cfg.WAL.Dir,
		SegmentSize: cfg.WAL.SegmentSize,
	})
	if err != nil {
		log.Fatalf("entry WAL init failed: %v", err)
	}
	defer entryWAL.Close()

	outbox, err := exitwal.Open(cfg.Outbox.Dir)
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer outbox.Close()

	// ---------------- Domain + Service ----------------

	book := orderbook.NewOrderBook(orderbook.Config{
		Symbol:     cfg.Engine.Symbol,
		BasePrice:  cfg.Engine.BasePrice,
		TickSize:   cfg.Engine.TickSize,
		PriceRange: int64(cfg.Engine.PriceRange),
		Capacity:   cfg.Engine.Capacity,
	})
	ring := memory.NewRing[exitwal.Record](service.FillRingSize)
	svc := service.NewOrderService(book, entryWAL, outbox, ring)

	// Recovery MUST finish before accepting traffic.
	if err := svc.Recover(cfg.WAL.Dir, cfg.Snapshot.Dir); err != nil {
		log.Fatalf("recovery failed: %v", err)
	}

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.StartSnapshotJob(ctx, cfg.Snapshot.Dir, cfg.Snapshot.Interval)

	bc, err := broadcaster.New(outbox, ring, cfg.Kafka.Brokers, cfg.Kafka.FillTopic)
	if err != nil {
		log.Fatalf("broadcaster init failed: %v", err)
	}
	defer bc.Close()
	bc.Start(ctx)

	depthProducer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.DepthTopic)
	defer depthProducer.Close()
	feed := depthfeed.New(svc, depthProducer, cfg.Depth.Levels, cfg.Depth.Interval)
	feed.Start(ctx)

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		log.Fatalf("listen %s: %v", cfg.GRPC.Addr, err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterOrderServiceServer(grpcSrv, grpcserver.NewServer(svc))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("[server] shutting down")
		grpcSrv.GracefulStop()
		cancel()
		if err := svc.Sync(); err != nil {
			log.Printf("[server] wal sync: %v", err)
		}
	}()

	log.Printf("[server] %s engine listening on %s", cfg.Engine.Symbol, cfg.GRPC.Addr)
	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}
