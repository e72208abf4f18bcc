package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
 __                         
/ /___  ______  ____  _  __
/ __/ / / / __ \/ __ \| |/_/
/ /_/ /_/ / /_/ / /_/ />  <  
\__/\__, / .___/\____/_/|_|  
   /____/_/                 
`

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}

// GetUpdateCallback returns a callback function that updates typox
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("typox", version)()
	}
}
