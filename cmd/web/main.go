// @title           bitskill API
// @version         1.0
// @description     API маркетплейса микрозаданий для студентов и фрилансеров.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:5000
// @BasePath        /api/v1

package main

import "bitskill_backend/internal/app"

func main() {
	app.Run()
}
