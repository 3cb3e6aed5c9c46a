package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:8000"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "run":
		runCmd(apiURL, args)
	case "info":
		infoCmd(apiURL)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Battle Simulator - Development tool for checking win rates

USAGE:
  simulator <command> [options]

COMMANDS:
  run       Start N battles between two participants and report win rates
  info      Print service info
  help      Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8000)

EXAMPLES:
  # 1000 battles, 300 power against 100 power
  simulator run --p1=Knight:300 --p2=Squire:100 --count=1000

  # Zero power tie-break
  simulator run --p1=A:0 --p2=B:0`)
}

func parseParticipant(s string) (Participant, error) {
	i := strings.LastIndex(s, ":")
	if i <= 0 {
		return Participant{}, fmt.Errorf("participant %q must look like name:power", s)
	}
	power, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return Participant{}, fmt.Errorf("participant %q has invalid power: %w", s, err)
	}
	return Participant{Name: s[:i], Power: power}, nil
}

func runCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	p1Flag := fs.String("p1", "Warrior1:50", "First participant as name:power")
	p2Flag := fs.String("p2", "Warrior2:30", "Second participant as name:power")
	count := fs.Int("count", 100, "Number of battles to run")
	fs.Parse(args)

	if *count < 1 {
		fmt.Println("Error: --count must be at least 1")
		os.Exit(1)
	}

	p1, err := parseParticipant(*p1Flag)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	p2, err := parseParticipant(*p2Flag)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if p1.Name == p2.Name {
		fmt.Println("Error: participants need distinct names to count wins")
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)

	fmt.Println("=== Battle Simulator ===")
	fmt.Printf("%s (%d) vs %s (%d), %d battles\n\n", p1.Name, p1.Power, p2.Name, p2.Power, *count)

	wins := map[string]int{}
	for i := 0; i < *count; i++ {
		id, err := client.StartBattle(p1, p2)
		if err != nil {
			fmt.Printf("  [%d/%d] FAILED to start battle: %v\n", i+1, *count, err)
			os.Exit(1)
		}

		battle, err := client.GetBattle(id)
		if err != nil {
			fmt.Printf("  [%d/%d] FAILED to fetch result: %v\n", i+1, *count, err)
			os.Exit(1)
		}
		wins[battle.Winner]++
	}

	expected := 0.5
	if total := p1.Power + p2.Power; total > 0 {
		expected = float64(p1.Power) / float64(total)
	}

	observed := float64(wins[p1.Name]) / float64(*count)
	fmt.Printf("%-20s %6d wins  observed %.3f  expected %.3f\n", p1.Name, wins[p1.Name], observed, expected)
	fmt.Printf("%-20s %6d wins  observed %.3f  expected %.3f\n", p2.Name, wins[p2.Name], 1-observed, 1-expected)

	if info, err := client.Info(); err == nil {
		fmt.Printf("\nServer now holds %d battles\n", info.TotalBattles)
	}
}

func infoCmd(apiURL string) {
	client := NewAPIClient(apiURL)

	info, err := client.Info()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(info.Message)
	for name, endpoint := range info.Endpoints {
		fmt.Printf("  %-14s %s\n", name, endpoint)
	}
	fmt.Printf("Total battles: %d\n", info.TotalBattles)
}
