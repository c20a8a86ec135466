package main

import (
	"flag"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/velledaq/k8055/config"
	"github.com/velledaq/k8055/devices/k8055"
	"github.com/velledaq/k8055/logging"
	"github.com/velledaq/k8055/usb"
	"github.com/velledaq/k8055/utils"
)

var address string
var poll time.Duration
var mirror bool

func init() {
	flag.StringVar(&address, "address", "", "card address (any, card1..card4)")
	flag.DurationVar(&poll, "poll", 0, "input poll interval")
	flag.BoolVar(&mirror, "mirror", false, "echo digital inputs to the outputs")
}

func main() {
	flag.Parse()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	// flags override file settings
	if address != "" {
		cfg.Address = address
	}
	if poll != 0 {
		cfg.Poll = config.Duration(poll)
	}
	if mirror {
		cfg.Mirror = true
	}
	if cfg.Poll.Duration() <= 0 {
		cfg.Poll = config.DefaultConfig().Poll
	}
	logging.SetupLogger(cfg.LogLevel)

	addr, err := k8055.ParseCardAddress(cfg.Address)
	if err != nil {
		log.Fatal(err)
	}

	bus := usb.NewHostBus()
	defer func() {
		_ = bus.Close()
	}()
	card, err := k8055.FindCard(bus, addr)
	if err != nil {
		log.Fatal(err)
	}
	if err := card.Open(); err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = card.Close()
	}()
	if err := card.Reset(); err != nil {
		log.Fatal(err)
	}
	log.Info("Monitoring ", card)

	if watcher, err := utils.NewFileWatcher(config.Path(), func() {
		if reloaded, loadErr := config.LoadConfig(); loadErr == nil {
			logging.SetLevel(reloaded.LogLevel)
		}
	}); err == nil {
		defer func() {
			_ = watcher.Close()
		}()
	} else {
		log.WithError(err).Warn("Config watcher unavailable")
	}

	quit := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go monitor(card, cfg, quit, &wg)
	utils.Wait()
	close(quit)
	wg.Wait()
}

func monitor(card *k8055.Card, cfg *config.Config, quit chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()
	ticker := time.NewTicker(cfg.Poll.Duration())
	defer ticker.Stop()
	last := k8055.DZero
	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			status, err := card.ReadStatus()
			if err != nil {
				log.WithError(err).Error("Status read failed")
				continue
			}
			in := k8055.DigitalChannelFromByte(status.DigitalIn)
			if in == last {
				continue
			}
			last = in
			log.WithFields(log.Fields{
				"digital": in,
				"analog1": status.Analog1In,
				"analog2": status.Analog2In,
			}).Info("Inputs changed")
			if cfg.Mirror {
				if err := card.WriteDigitalOut(in); err != nil {
					log.WithError(err).Error("Mirror write failed")
				}
			}
		}
	}
}
