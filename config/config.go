package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"wibble/wire"
)

// Load reads an optional .env file and returns the simulation tuning with
// any WIBBLE_* overrides applied on top of the defaults.
func Load() *wire.Tuning {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment overrides from .env")
	}

	tun := wire.DefaultTuning()
	overrideFloat("WIBBLE_FRICTION", &tun.Friction)
	overrideFloat("WIBBLE_BREAK_AFTER", &tun.BreakAfter)
	overrideFloat("WIBBLE_SHRINK_RATE", &tun.ShrinkRate)
	overrideFloat("WIBBLE_THICKNESS", &tun.ThicknessScale)
	overrideFloat("WIBBLE_HANG", &tun.HangMultiplier)
	overrideFloat("WIBBLE_STIFFNESS", &tun.Stiffness)
	overrideFloat("WIBBLE_DAMPING", &tun.DampingRatio)
	overrideBool("WIBBLE_BOUNCE", &tun.Bounce)
	return tun
}

// Addr returns the listen address, defaulting when unset.
func Addr() string {
	if a := os.Getenv("WIBBLE_ADDR"); a != "" {
		return a
	}
	return ":8080"
}

func overrideFloat(key string, dst *float64) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return
	}
	*dst = f
}

func overrideBool(key string, dst *bool) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return
	}
	*dst = b
}
