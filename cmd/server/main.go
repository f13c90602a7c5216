package main

// @title           AgriTrack API
// @version         1.0
// @description     Harvest tracking service: harvests, worker rosters, and daily weight records
// @BasePath        /api/v1
func main() {
	Execute()
}
