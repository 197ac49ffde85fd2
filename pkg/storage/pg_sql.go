package storage

//noinspection SpellCheckingInspection
const pgsql = `
BEGIN;

DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'campaign_status') THEN
    CREATE TYPE campaign_status AS ENUM ('draft', 'published', 'paused', 'funded');
  END IF;

  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'pledge_status') THEN
    CREATE TYPE pledge_status AS ENUM ('pending', 'captured', 'failed');
  END IF;
END
$$;

-- Campaigns

CREATE TABLE IF NOT EXISTS campaigns (
  id VARCHAR(64) PRIMARY KEY,
  title TEXT NOT NULL CHECK (title <> ''),
  goal NUMERIC(14, 2) NOT NULL CHECK (goal > 0),
  raised_amount NUMERIC(14, 2) NOT NULL DEFAULT 0,
  currency VARCHAR(3) NOT NULL DEFAULT 'usd',
  status campaign_status NOT NULL DEFAULT 'draft',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS campaigns_status_idx ON campaigns(status);

-- Backers

CREATE TABLE IF NOT EXISTS backers (
  id VARCHAR(64) PRIMARY KEY,
  email VARCHAR(320) NOT NULL UNIQUE CHECK (email <> ''),
  name VARCHAR(255) NULL,
  roles TEXT[] NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

-- Pledges

CREATE TABLE IF NOT EXISTS pledges (
  id VARCHAR(64) PRIMARY KEY,
  campaign_id VARCHAR(64) NOT NULL REFERENCES campaigns(id),
  backer_id VARCHAR(64) NOT NULL REFERENCES backers(id),
  pledge_tier_id VARCHAR(64) NULL,
  amount NUMERIC(14, 2) NOT NULL CHECK (amount >= 0),
  currency VARCHAR(3) NOT NULL,
  status pledge_status NOT NULL DEFAULT 'pending',
  payment_ref VARCHAR(255) NULL,
  gateway_session_id VARCHAR(255) NULL UNIQUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS pledges_payment_ref_idx ON pledges(payment_ref);
CREATE INDEX IF NOT EXISTS pledges_campaign_id_idx ON pledges(campaign_id);

COMMIT;
`
