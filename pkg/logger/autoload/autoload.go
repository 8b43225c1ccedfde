// Package autoload initializes the global logger from LOG_* environment
// variables as a side effect of being imported.
package autoload

import (
	logx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/pkg/logger"
)

func init() {
	logx.Init(logx.FromEnv())
}
