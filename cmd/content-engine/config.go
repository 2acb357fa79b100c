// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/content-engine/pkg/types"
)

// Flag values win over config file values; config file values win over the
// flag defaults. viper handles the CONTENT_ENGINE_* environment overrides.

func stringOpt(cmd *cobra.Command, flag, viperKey string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(viperKey) {
		return viper.GetString(viperKey)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func intOpt(cmd *cobra.Command, flag, viperKey string) int {
	if !cmd.Flags().Changed(flag) && viper.IsSet(viperKey) {
		return viper.GetInt(viperKey)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

func float64Opt(cmd *cobra.Command, flag, viperKey string) float64 {
	if !cmd.Flags().Changed(flag) && viper.IsSet(viperKey) {
		return viper.GetFloat64(viperKey)
	}
	v, _ := cmd.Flags().GetFloat64(flag)
	return v
}

func boolOpt(cmd *cobra.Command, flag, viperKey string) bool {
	if !cmd.Flags().Changed(flag) && viper.IsSet(viperKey) {
		return viper.GetBool(viperKey)
	}
	v, _ := cmd.Flags().GetBool(flag)
	return v
}

func searchConfig(cmd *cobra.Command) types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   time.Duration(intOpt(cmd, "timeout", "search.timeout")) * time.Second,
			UserAgent: stringOpt(cmd, "user-agent", "search.user_agent"),
		},
		MaxResults: intOpt(cmd, "max-results", "search.max_results"),
	}
}

func storeConfig(cmd *cobra.Command) types.StoreConfig {
	return types.StoreConfig{
		StoreDir: stringOpt(cmd, "store-dir", "store.store_dir"),
	}
}
