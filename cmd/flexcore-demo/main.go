// Command flexcore-demo runs a two-region pipeline under
// internal/runtime.Controller, loads a threshold setting through
// internal/settings, and serves a live inspector over HTTP/websocket
// through internal/inspect.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/voodooEntity/archivist"

	"github.com/nyue/flexcore"
	"github.com/nyue/flexcore/clock"
	"github.com/nyue/flexcore/internal/inspect"
	"github.com/nyue/flexcore/internal/runtime"
	"github.com/nyue/flexcore/internal/settings"
)

func main() {
	addr := flag.String("addr", ":8080", "inspector HTTP address")
	settingsDir := flag.String("settings", "./settings", "settings backend directory")
	flag.Parse()

	log := archivist.New(&archivist.Config{LogLevel: archivist.LEVEL_INFO})

	backend, err := settings.NewJSONFile[int](*settingsDir, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "settings:", err)
		os.Exit(1)
	}

	var threshold int
	if err := backend.RegisterSetting("threshold", 10, func(v int) { threshold = v }); err != nil {
		fmt.Fprintln(os.Stderr, "settings:", err)
		os.Exit(1)
	}
	log.Info(fmt.Sprintf("loaded threshold=%d", threshold))

	producer := flexcore.NewRegion("producer")
	consumer := flexcore.NewRegion("consumer")

	src := flexcore.NewEventSource[int]()
	src.SetRegion(producer)

	var count int
	sink := flexcore.NewEventSink(func(v int) {
		count++
		if v > threshold {
			log.Info(fmt.Sprintf("value %d crossed threshold %d", v, threshold))
		}
	})
	sink.SetRegion(consumer)

	if err := flexcore.ConnectEvent(src, sink); err != nil {
		log.Fatal(err.Error())
		os.Exit(1)
	}

	producerCtl := runtime.NewController(producer, clock.Fast, runtime.WithLogger(log), runtime.WithOverrunThreshold(5*time.Millisecond))
	consumerCtl := runtime.NewController(consumer, clock.Fast, runtime.WithLogger(log), runtime.WithOverrunThreshold(5*time.Millisecond))
	producerCtl.Start()
	consumerCtl.Start()
	defer producerCtl.Stop()
	defer consumerCtl.Stop()

	srv := inspect.NewServer("# flexcore-demo\n\nLive two-region pipeline with a cross-region buffer.")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Run(ctx)

	go func() {
		i := 0
		for range time.Tick(clock.Medium) {
			i++
			src.Fire(i)
			srv.Push(inspect.Snapshot{
				TickCounts: map[string]uint64{
					"producer": producerCtl.TickCount(),
					"consumer": consumerCtl.TickCount(),
				},
			})
		}
	}()

	httpSrv := &http.Server{Addr: *addr, Handler: srv.Handler()}
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(err.Error())
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	httpSrv.Close()
}
