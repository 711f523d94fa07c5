package tennis

// logo is the banner drawn above the idle message.
var logo = []string{
	` _____                  _     `,
	`|_   _|__ _ __  _ __   (_)___ `,
	`  | |/ _ \ '_ \| '_ \  | / __|`,
	`  | |  __/ | | | | | | | \__ \`,
	`  |_|\___|_| |_|_| |_| |_|___/`,
}
