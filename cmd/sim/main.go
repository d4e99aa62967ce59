package main

import (
	"flag"
	"log"

	"sparsekit/internal/core"
	"sparsekit/internal/core/config"
	"sparsekit/internal/core/script"
)

func main() {
	cfgPath := flag.String("config", "", "path to a YAML config file")
	headless := flag.Bool("headless", false, "run without a window")
	frames := flag.Int("frames", 0, "frame budget for headless runs (0 keeps the config value)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *headless {
		cfg.Headless = true
	}
	if *frames > 0 {
		cfg.Frames = *frames
	}

	var waves []script.Wave
	if cfg.Scenario != "" {
		var err error
		waves, err = script.LoadScenario(cfg.Scenario)
		if err != nil {
			log.Fatal(err)
		}
	}

	sim := core.NewSim(cfg, waves)
	if cfg.Headless {
		sim.RunHeadless(log.Printf)
		return
	}
	if err := sim.Run(); err != nil {
		log.Fatal(err)
	}
}
