// meta/meta.go
package meta

// NUM_GAMES defines the number of games played per matchup.
const NUM_GAMES = 10

// MOVE_LIMIT defines the default look-ahead of depth-limited agents, in moves of the searching player.
const MOVE_LIMIT = 3

// REPEATS defines the number of searches per agent in a throughput run.
const REPEATS = 5

// OUTPUT_DIR defines where experiment results are written.
const OUTPUT_DIR = "experiments/results"
