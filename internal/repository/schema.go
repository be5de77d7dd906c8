package repository

// schema is applied on startup. The unique index on link is what resolves
// concurrent inserts of the same canonical URL.
const schema = `
CREATE TABLE IF NOT EXISTS urls (
	id         BIGSERIAL PRIMARY KEY,
	link       TEXT        NOT NULL,
	is_fraud   BOOLEAN     NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS urls_link_key ON urls (link);
CREATE INDEX IF NOT EXISTS urls_created_at_idx ON urls (created_at DESC);

CREATE TABLE IF NOT EXISTS http_metrics (
	time        TIMESTAMPTZ      NOT NULL,
	method      TEXT             NOT NULL,
	path        TEXT             NOT NULL,
	status_code INT              NOT NULL,
	duration_ms DOUBLE PRECISION NOT NULL,
	client_ip   TEXT             NOT NULL,
	error       TEXT             NOT NULL
);

CREATE TABLE IF NOT EXISTS business_metrics (
	time        TIMESTAMPTZ      NOT NULL,
	metric_name TEXT             NOT NULL,
	value       DOUBLE PRECISION NOT NULL,
	labels      JSONB
);

CREATE TABLE IF NOT EXISTS infra_metrics (
	time            TIMESTAMPTZ      NOT NULL,
	pool_acquired   INT              NOT NULL,
	pool_idle       INT              NOT NULL,
	pool_total      INT              NOT NULL,
	pool_max        INT              NOT NULL,
	cache_hits      BIGINT           NOT NULL,
	cache_misses    BIGINT           NOT NULL,
	cache_hit_ratio DOUBLE PRECISION NOT NULL,
	goroutines      INT              NOT NULL,
	heap_alloc_mb   DOUBLE PRECISION NOT NULL
);
`
