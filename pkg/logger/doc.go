// Package logger builds *slog.Logger instances from functional options and
// injects request-scoped values stored in context.Context into every record.
//
// New picks a JSON or text handler, applies static attributes and wraps the
// handler so that registered ContextExtractor callbacks run on each Handle
// call. Packages that store data in the request context (requestid, clientip)
// expose their own extractor.
//
// Attribute helpers in attr.go keep key names consistent across the code base.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "homesite"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "range lookup", logger.Source("remote"), logger.Duration(d))
package logger
