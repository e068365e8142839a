package bridge

import "github.com/viant/otp"

type Options struct {
	ConfigURL string `short:"c" long:"config" description:"broker config file URL (yaml or json)"`
	otp.Options
}
