// meta/meta.go
package meta

import "time"

// SearchDepth is the default depth of fixed-depth minimax agents.
const SearchDepth = 3

// TimerThreshold is the time left (ms) below which a search aborts.
const TimerThreshold = 10.0

// TimeLimit is the default time budget per turn.
const TimeLimit = 150 * time.Millisecond

// BoardSize is the default board width and height.
const BoardSize = 7

// GamesPerMatchUp is the default number of games between two agents.
const GamesPerMatchUp = 10

// Workers is the default number of games played concurrently.
const Workers = 4
