// Package guard decorates command actions with timeouts, retries and a
// circuit breaker. Every decorator keeps the rop.Action shape, so guarded
// actions plug into command.New unchanged.
//
// Decorators compose with Apply; the first decorator is the outermost:
//
//	action := guard.Apply(fetchProfile,
//		guard.Breaker[Profile]("profile", cfg, logger),
//		guard.Retry[Profile](cfg.MaxRetries, cfg.InitialBackoff, cfg.MaxBackoff),
//		guard.Timeout[Profile](cfg.Timeout),
//	)
//
// Standard wires all three from a Config, which LoadConfig reads from
// ASYNCMD_* environment variables.
package guard
