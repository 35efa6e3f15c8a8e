// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

/*
Package config provides centralized configuration management.

Configuration is loaded with Koanf v2 in three layers, later layers
overriding earlier ones:

 1. Built-in defaults (structs provider)
 2. Optional YAML config file (CONFIG_PATH or the default search paths)
 3. Environment variables, mapped through an explicit table

Sections: Server (listen address, timeouts), Content (domain JSON
directory, watcher, reload throttling), Cache (menu response cache), API
(rate limits, CORS), Logging (level, format).

The loaded Config is validated before use; a service never starts with a
configuration it cannot serve.
*/
package config
