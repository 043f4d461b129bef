package main

import "github.com/coursekit/video-api/cmd"

// @title           Course Video API
// @version         1.0.0
// @description     An API for embedding course videos hosted on external platforms and managing their transcripts
// @contact.name    API Support
// @contact.url     https://github.com/coursekit/video-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
