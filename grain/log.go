/*
DESCRIPTION
  log.go wires this package into the codebase's standard leveled logging
  interface. Only configuration-time decisions are logged; the per-line and
  per-stripe hot paths do not log, matching the rest of the codec/ and
  protocol/ packages.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package grain

import "github.com/ausocean/utils/logging"

// discardLogger satisfies logging.Logger while discarding everything; it
// backs a *Synthesizer when NewSynthesizer is given a nil logger.
type discardLogger struct{}

func (discardLogger) Debug(string, ...interface{})   {}
func (discardLogger) Info(string, ...interface{})    {}
func (discardLogger) Warning(string, ...interface{}) {}
func (discardLogger) Error(string, ...interface{})   {}
func (discardLogger) Fatal(string, ...interface{})   {}

var _ logging.Logger = discardLogger{}
