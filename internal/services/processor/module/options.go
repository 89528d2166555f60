package module

import "quipbot/internal/platform/config"

// Options holds configuration settings for the processor module
type Options struct {
	BotName  string
	JobsFile string
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	bf := cfg.Prefix("BOT_")
	return Options{
		BotName:  bf.MayString("NAME", "quipbot"),
		JobsFile: bf.MayString("JOBS_FILE", "jobs.json"),
	}
}
