package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"airlinetycoon/internal/api"
	"airlinetycoon/internal/simulation"
)

const defaultSaveName = "autosave.json"

func main() {
	saveDir := getSaveDir()
	if err := os.MkdirAll(saveDir, 0o755); err != nil {
		log.Fatalf("failed to create save directory: %v", err)
	}

	world, err := simulation.LoadFromDir(saveDir, defaultSaveName)
	if err == nil {
		log.Printf("loaded autosave from %s", filepath.Join(saveDir, defaultSaveName))
	} else {
		world = simulation.NewWorld(getSeed(), "Player Airlines", getHub(), defaultCompetitors())
		log.Printf("starting new world (seed=%d, hub=%s)", world.Seed, world.Player.HomeHub)
	}

	handler := api.New(world, saveDir)

	port := getPort()
	log.Printf("server listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

func defaultCompetitors() []simulation.CompetitorSeed {
	return []simulation.CompetitorSeed{
		{Name: "Horizon Air", HomeHub: "ORD", PersonalityTag: "Aggressive"},
		{Name: "Pinnacle Airways", HomeHub: "ATL", PersonalityTag: "Conservative"},
		{Name: "Value Jet", HomeHub: "DFW", PersonalityTag: "Budget"},
	}
}

func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "4000"
}

func getSeed() int64 {
	if s := os.Getenv("WORLD_SEED"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return v
		}
	}
	return 1
}

func getHub() string {
	if h := os.Getenv("PLAYER_HUB"); h != "" {
		return h
	}
	return "JFK"
}

func getSaveDir() string {
	if d := os.Getenv("SAVE_DIR"); d != "" {
		return d
	}
	return "data/saves"
}
