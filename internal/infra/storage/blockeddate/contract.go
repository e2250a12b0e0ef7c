package blockeddate

import "github.com/drufus/serenity/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
