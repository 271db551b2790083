// Package pg bootstraps the PostgreSQL layer on top of pgx/v5: a retrying
// pool constructor, goose migrations applied from an fs.FS, a readiness
// check, a transaction helper and predicates for common driver errors.
//
//	pool, err := pg.Connect(ctx, cfg.Postgres)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg.Postgres, db.Migrations, log); err != nil {
//		return err
//	}
package pg
