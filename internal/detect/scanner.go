package detect

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/edesto/edesto/internal/catalog"
	"github.com/edesto/edesto/internal/log"
)

const (
	cacheTTL     = 5 * time.Second
	cacheCleanup = 30 * time.Second
	cacheScanKey = "board-list"
)

// Detection is one recognized board on a serial port.
type Detection struct {
	Board *catalog.Board
	Port  string
}

// boardListOutput mirrors the JSON emitted by `arduino-cli board list --json`.
type boardListOutput struct {
	DetectedPorts []detectedPort `json:"detected_ports"`
}

type detectedPort struct {
	Port           portInfo        `json:"port"`
	MatchingBoards []matchingBoard `json:"matching_boards"`
}

type portInfo struct {
	Address    string            `json:"address"`
	Protocol   string            `json:"protocol"`
	Properties map[string]string `json:"properties"`
}

type matchingBoard struct {
	Name string `json:"name"`
	FQBN string `json:"fqbn"`
}

// usbFallback maps normalized "VID:PID" pairs to candidate catalog slugs,
// tried in order, for ports where arduino-cli reports no matching board.
// CH340 and CP210x bridges are what the cheap dev boards ship with.
var usbFallback = map[string][]string{
	"1A86:7523": {"esp32", "esp8266", "arduino-nano"}, // CH340
	"10C4:EA60": {"esp32", "esp32s3", "esp32c3"},      // CP210x
}

// Scanner detects connected boards through an Executor and resolves them
// against the catalog. Scan results are cached briefly so watch mode does
// not hammer arduino-cli on event bursts.
type Scanner struct {
	cat   *catalog.Catalog
	exec  Executor
	cache *gocache.Cache
}

// NewScanner creates a Scanner over the given catalog and executor.
func NewScanner(cat *catalog.Catalog, exec Executor) *Scanner {
	return &Scanner{
		cat:   cat,
		exec:  exec,
		cache: gocache.New(cacheTTL, cacheCleanup),
	}
}

// Scan returns all recognized boards currently connected.
//
// Detection is best-effort: a missing arduino-cli, a failed invocation, or
// malformed output all yield an empty slice, never an error. Ports whose
// board cannot be resolved against the catalog are skipped.
func (s *Scanner) Scan(ctx context.Context) []Detection {
	if cached, ok := s.cache.Get(cacheScanKey); ok {
		return cached.([]Detection)
	}

	raw, err := s.exec.BoardList(ctx)
	if err != nil {
		log.Warn(log.CatDetect, "board list unavailable", "error", err)
		return nil
	}

	detections := s.parse(raw)
	s.cache.Set(cacheScanKey, detections, gocache.DefaultExpiration)
	return detections
}

// Invalidate drops the cached scan result so the next Scan hits arduino-cli.
func (s *Scanner) Invalidate() {
	s.cache.Delete(cacheScanKey)
}

func (s *Scanner) parse(raw []byte) []Detection {
	var out boardListOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn(log.CatDetect, "unparseable board list output", "error", err)
		return nil
	}

	var detections []Detection
	for _, dp := range out.DetectedPorts {
		boards := s.resolve(dp)
		if len(boards) == 0 {
			log.Debug(log.CatDetect, "skipping unrecognized port", "port", dp.Port.Address)
			continue
		}
		for _, board := range boards {
			detections = append(detections, Detection{Board: board, Port: dp.Port.Address})
		}
	}
	return detections
}

// resolve maps one detected port to its catalog candidates. An exact FQBN
// match from arduino-cli wins and yields a single board; otherwise every
// catalog board behind the port's USB VID/PID is a candidate, so callers
// can ask the user which one is actually plugged in.
func (s *Scanner) resolve(dp detectedPort) []*catalog.Board {
	for _, mb := range dp.MatchingBoards {
		if board, ok := s.cat.LookupFQBN(mb.FQBN); ok {
			return []*catalog.Board{board}
		}
	}

	key := usbKey(dp.Port.Properties)
	if key == "" {
		return nil
	}
	var boards []*catalog.Board
	for _, slug := range usbFallback[key] {
		if board, err := s.cat.Lookup(slug); err == nil {
			boards = append(boards, board)
		}
	}
	return boards
}

// usbKey builds the normalized "VID:PID" lookup key from port properties.
// arduino-cli reports values like "0x1A86"; the 0x prefix and case vary
// by platform, so both are normalized away.
func usbKey(props map[string]string) string {
	vid := normalizeUSBID(props["vid"])
	pid := normalizeUSBID(props["pid"])
	if vid == "" || pid == "" {
		return ""
	}
	return vid + ":" + pid
}

func normalizeUSBID(id string) string {
	id = strings.TrimPrefix(strings.TrimSpace(id), "0x")
	id = strings.TrimPrefix(id, "0X")
	return strings.ToUpper(id)
}
